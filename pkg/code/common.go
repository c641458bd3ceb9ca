package code

var (
	Success              = NewSuss(0, "success")
	ErrorInvalidParams   = NewError(10001, "invalid request parameters")
	ErrorNotFound        = NewError(10002, "resource not found")
	ErrorServerInternal  = NewError(10003, "internal server error")
	ErrorTooManyRequests = NewError(10004, "too many requests")
	ErrorDBQuery         = NewError(10005, "database query error")

	ErrorNotUserAuthToken     = NewError(20001, "missing auth token")
	ErrorInvalidUserAuthToken = NewError(20002, "invalid auth token")
	ErrorUserNotExist         = NewError(20003, "user does not exist")
	ErrorRegisterDisabled     = NewError(20004, "registration is disabled")

	ErrorEventNotFound         = NewError(30001, "event not found")
	ErrorRepeatingNotFound     = NewError(30002, "repeating series not found")
	ErrorInvalidRepeatInterval = NewError(30003, "repeat interval must be week or month")
	ErrorInvalidTimeRange      = NewError(30004, "end time must be after start time")

	ErrorClubNotFound         = NewError(31001, "club not found")
	ErrorVolunteeringNotFound = NewError(32001, "volunteering opportunity not found")

	ErrorReservationNotFound = NewError(33001, "reservation not found")
	ErrorReservationOverlap  = NewError(33002, "room is already reserved for that time")

	ErrorHistoryNotFound      = NewError(34001, "history entry not found")
	ErrorHistoryNotRestorable = NewError(34002, "history entry cannot be restored")
)
