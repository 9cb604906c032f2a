package types

// Column names of the uploaded support-ticket dataset. The mixed naming
// style (snake_case, Title Case, hyphens) is the export format of the
// upstream ticketing system and must match the fitted preprocessor exactly.
const (
	ColChannelName  = "channel_name"
	ColCategory     = "category"
	ColSubCategory  = "Sub-category"
	ColAgentName    = "Agent_name"
	ColSupervisor   = "Supervisor"
	ColManager      = "Manager"
	ColTenureBucket = "Tenure Bucket"
	ColAgentShift   = "Agent Shift"

	ColCSATScore      = "CSAT Score"
	ColResolutionTime = "resolution_time"
	ColHandlingTime   = "connected_handling_time"

	ColPredictedCSAT  = "Predicted CSAT"
	ColPredictedLabel = "Predicted Label"
)

// FeatureColumns returns the eight categorical columns the model contract
// is built on, in fit order.
func FeatureColumns() []string {
	return []string{
		ColChannelName,
		ColCategory,
		ColSubCategory,
		ColAgentName,
		ColSupervisor,
		ColManager,
		ColTenureBucket,
		ColAgentShift,
	}
}

// FeatureRecord is one support interaction described by the categorical
// fields the preprocessor was fit on.
type FeatureRecord struct {
	ChannelName  string `json:"channel_name"`
	Category     string `json:"category"`
	SubCategory  string `json:"sub_category"`
	AgentName    string `json:"agent_name"`
	Supervisor   string `json:"supervisor"`
	Manager      string `json:"manager"`
	TenureBucket string `json:"tenure_bucket"`
	AgentShift   string `json:"agent_shift"`
}

// Value maps a contract column name to the record field that feeds it.
func (r FeatureRecord) Value(column string) (string, bool) {
	switch column {
	case ColChannelName:
		return r.ChannelName, true
	case ColCategory:
		return r.Category, true
	case ColSubCategory:
		return r.SubCategory, true
	case ColAgentName:
		return r.AgentName, true
	case ColSupervisor:
		return r.Supervisor, true
	case ColManager:
		return r.Manager, true
	case ColTenureBucket:
		return r.TenureBucket, true
	case ColAgentShift:
		return r.AgentShift, true
	default:
		return "", false
	}
}

// Prediction is one classified record: the numeric model output and its
// human-readable label.
type Prediction struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}
