package models

// PointRate holds the per-point failure percentages over a record window,
// one row per (robot, position, welding point) group.
type PointRate struct {
	ID                   string `json:"id"`
	RobotName            string `json:"robotName"`
	Position             string `json:"position"`
	WeldingPoint         string `json:"weldingPoint"`
	VisionProFailRate    int    `json:"visionproFailRate"`
	DeepLearningFailRate int    `json:"deeplearningFailRate"`
	OverallFailRate      int    `json:"overallFailRate"`
}
