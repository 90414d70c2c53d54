package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldTeamID     = "team_id"
	FieldGamePk     = "game_pk"
	FieldGameStatus = "game_status"
	FieldPlayIndex  = "play_index"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
