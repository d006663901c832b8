// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains background job processing (using Redis/Asynq), the external
// payment service client, email client integrations (like Resend), and the
// Telegram two-factor login bot.
package lib
