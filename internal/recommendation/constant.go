package recommendation

// Fallback reasons reported in GenerateOutput.FallbackReason.
const (
	ReasonNoGenerator    = "no_generator"
	ReasonCallFailed     = "call_failed"
	ReasonEmptyResponse  = "empty_response"
	ReasonNoArray        = "no_array"
	ReasonMalformedArray = "malformed_array"
	ReasonNoValidRecords = "no_valid_records"
)

// Advertised priorities. Values returned by the provider are not checked
// against them.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// MaxRecommendations caps every result list.
const MaxRecommendations = 4
