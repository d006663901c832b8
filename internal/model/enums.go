package model

// Role is a user's access role.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleUser    Role = "USER"
	RoleTrainer Role = "TRAINER"
	RoleStaffer Role = "STAFFER"
	RoleSystem  Role = "SYSTEM"
	RoleAnalyst Role = "ANALYST"
	RoleOther   Role = "OTHER"
)

// Valid reports whether the role is part of the known vocabulary.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser, RoleTrainer, RoleStaffer, RoleSystem, RoleAnalyst, RoleOther:
		return true
	}
	return false
}

// IsStaff reports whether the role is exempt from ownership restrictions.
// Plain USER (and the catch-all OTHER) are not.
func (r Role) IsStaff() bool {
	switch r {
	case RoleAdmin, RoleTrainer, RoleStaffer, RoleSystem, RoleAnalyst:
		return true
	}
	return false
}

// Gender of a client.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

// ClientStatus is a client's activity status. Only ACTIVE→INACTIVE is driven
// by the expiry job; the remaining values are set administratively.
type ClientStatus string

const (
	ClientActive    ClientStatus = "ACTIVE"
	ClientInactive  ClientStatus = "INACTIVE"
	ClientOnHold    ClientStatus = "ON_HOLD"
	ClientCancelled ClientStatus = "CANCELLED"
	ClientExpired   ClientStatus = "EXPIRED"
	ClientUpcoming  ClientStatus = "UPCOMING"
)

func (s ClientStatus) Valid() bool {
	switch s {
	case ClientActive, ClientInactive, ClientOnHold, ClientCancelled, ClientExpired, ClientUpcoming:
		return true
	}
	return false
}

// AccessLevel of a membership.
type AccessLevel string

const (
	AccessLimit     AccessLevel = "LIMIT"
	AccessStandard  AccessLevel = "STANDARD"
	AccessPremium   AccessLevel = "PREMIUM"
	AccessVIP       AccessLevel = "VIP"
	AccessFamily    AccessLevel = "FAMILY"
	AccessTrial     AccessLevel = "TRIAL"
	AccessDayPass   AccessLevel = "DAY_PASS"
	AccessWeekPass  AccessLevel = "WEEK_PASS"
	AccessGuest     AccessLevel = "GUEST"
	AccessCorporate AccessLevel = "CORPORATE"
	AccessDiscount  AccessLevel = "DISCOUNT"
	AccessOther     AccessLevel = "OTHER"
)

func (a AccessLevel) Valid() bool {
	switch a {
	case AccessLimit, AccessStandard, AccessPremium, AccessVIP, AccessFamily, AccessTrial,
		AccessDayPass, AccessWeekPass, AccessGuest, AccessCorporate, AccessDiscount, AccessOther:
		return true
	}
	return false
}

// PaymentStatus of a payment row.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentFailed    PaymentStatus = "FAILED"
	PaymentCancelled PaymentStatus = "CANCELLED"
	PaymentRefunded  PaymentStatus = "REFUNDED"
	PaymentExpired   PaymentStatus = "EXPIRED"
)

func (p PaymentStatus) Valid() bool {
	switch p {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentCancelled, PaymentRefunded, PaymentExpired:
		return true
	}
	return false
}

// MuscleGroup targeted by an exercise.
type MuscleGroup string

const (
	MuscleChest     MuscleGroup = "CHEST"
	MuscleBack      MuscleGroup = "BACK"
	MuscleLegs      MuscleGroup = "LEGS"
	MuscleArms      MuscleGroup = "ARMS"
	MuscleCore      MuscleGroup = "CORE"
	MuscleShoulders MuscleGroup = "SHOULDERS"
	MuscleButtocks  MuscleGroup = "BUTTOCKS"
	MuscleCalves    MuscleGroup = "CALVES"
	MuscleNeck      MuscleGroup = "NECK"
	MuscleHips      MuscleGroup = "HIPS"
	MuscleFullBody  MuscleGroup = "FULL_BODY"
	MuscleOther     MuscleGroup = "OTHER"
)

func (m MuscleGroup) Valid() bool {
	switch m {
	case MuscleChest, MuscleBack, MuscleLegs, MuscleArms, MuscleCore, MuscleShoulders,
		MuscleButtocks, MuscleCalves, MuscleNeck, MuscleHips, MuscleFullBody, MuscleOther:
		return true
	}
	return false
}

// Complexity level of an exercise.
type Complexity string

const (
	ComplexityBeginner     Complexity = "BEGINNER"
	ComplexityNovice       Complexity = "NOVICE"
	ComplexityIntermediate Complexity = "INTERMEDIATE"
	ComplexityAdvanced     Complexity = "ADVANCED"
	ComplexityExpert       Complexity = "EXPERT"
	ComplexityMaster       Complexity = "MASTER"
)

func (c Complexity) Valid() bool {
	switch c {
	case ComplexityBeginner, ComplexityNovice, ComplexityIntermediate,
		ComplexityAdvanced, ComplexityExpert, ComplexityMaster:
		return true
	}
	return false
}

// TrainingType of a training session.
type TrainingType string

const (
	TrainingCardio         TrainingType = "CARDIO"
	TrainingStrength       TrainingType = "STRENGTH"
	TrainingFlexibility    TrainingType = "FLEXIBILITY"
	TrainingBalance        TrainingType = "BALANCE"
	TrainingHIIT           TrainingType = "HIIT"
	TrainingYoga           TrainingType = "YOGA"
	TrainingPilates        TrainingType = "PILATES"
	TrainingEndurance      TrainingType = "ENDURANCE"
	TrainingCrossfit       TrainingType = "CROSSFIT"
	TrainingFunctional     TrainingType = "FUNCTIONAL"
	TrainingRehabilitation TrainingType = "REHABILITATION"
	TrainingDance          TrainingType = "DANCE"
	TrainingSwimming       TrainingType = "SWIMMING"
	TrainingOther          TrainingType = "OTHER"
)

func (t TrainingType) Valid() bool {
	switch t {
	case TrainingCardio, TrainingStrength, TrainingFlexibility, TrainingBalance, TrainingHIIT,
		TrainingYoga, TrainingPilates, TrainingEndurance, TrainingCrossfit, TrainingFunctional,
		TrainingRehabilitation, TrainingDance, TrainingSwimming, TrainingOther:
		return true
	}
	return false
}

// Intensity of a training session.
type Intensity string

const (
	IntensityVeryLow  Intensity = "VERY_LOW"
	IntensityLow      Intensity = "LOW"
	IntensityMedium   Intensity = "MEDIUM"
	IntensityHigh     Intensity = "HIGH"
	IntensityVeryHigh Intensity = "VERY_HIGH"
	IntensityExtreme  Intensity = "EXTREME"
)

func (i Intensity) Valid() bool {
	switch i {
	case IntensityVeryLow, IntensityLow, IntensityMedium, IntensityHigh, IntensityVeryHigh, IntensityExtreme:
		return true
	}
	return false
}
