package export

// Dataset defines tabular export content.
type Dataset struct {
	Headers []string
	Rows    [][]string
}
