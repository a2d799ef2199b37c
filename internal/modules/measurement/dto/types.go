package dto

type AddInput struct {
	Reading string
	Date    string
	Time    string
	Comment string
}

type RemoveInput struct {
	Date string
	// Time is optional; empty means "the single record of that day".
	Time string
}

type ExportInput struct {
	Path string
}

type RecordOutput struct {
	ID        int64
	Date      string
	Time      string
	Systolic  int
	Diastolic int
	Comment   string
}

type ListOutput struct {
	Records      []RecordOutput
	Count        int
	AvgSystolic  int
	AvgDiastolic int
}

type RemoveOutput struct {
	Removed []RecordOutput
}

type ExportOutput struct {
	Path  string
	Count int
}
