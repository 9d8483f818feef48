package doctor

import "fmt"

// Status is the outcome class of a single probe.
type Status int

const (
	Present Status = iota
	Absent
	Failed
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is what a System query reports back. Code is the platform error
// code and is only meaningful when Status is Failed.
type Result struct {
	Status Status
	Detail string
	Code   uint32
}

func Found(detail string) Result {
	return Result{Status: Present, Detail: detail}
}

func Missing(detail string) Result {
	return Result{Status: Absent, Detail: detail}
}

func FailedWith(code uint32) Result {
	return Result{Status: Failed, Code: code}
}

func (r Result) OK() bool {
	return r.Status == Present
}
