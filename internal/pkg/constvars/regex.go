package constvars

const (
	RegexEmail        = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
	RegexDateYYYYMMDD = `^\d{4}-\d{2}-\d{2}$`
	RegexObjectIDHex  = `^[a-fA-F0-9]{24}$`
	RegexTimeSlotHHMM = `^([01]\d|2[0-3]):[0-5]\d$`
)
