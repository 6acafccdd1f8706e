package logger

// Field names shared by every component's structured logs.
const (
	FieldRequestID = "request_id"
	FieldComponent = "component"

	FieldMethod = "method"
	FieldPath   = "path"
	FieldStatus = "status"

	FieldDurationMS = "duration_ms"
	FieldError      = "error"
	FieldCount      = "count"

	FieldFile      = "file"
	FieldScore     = "score"
	FieldProfile   = "profile"
	FieldStartTick = "start_tick"
	FieldEndTick   = "end_tick"
	FieldStaff     = "staff"
	FieldAddress   = "address"
)
