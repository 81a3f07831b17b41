package report

type Dataset struct {
	Label string    `json:"label"`
	Data  []float64 `json:"data"`
}

// ChartData is the labels/datasets shape consumed by the charting client.
type ChartData struct {
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
}

type Report struct {
	Name string    `json:"name"`
	Data ChartData `json:"data"`
}
