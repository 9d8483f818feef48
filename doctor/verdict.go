package doctor

// Verdict grades a finding for console output. The launcher itself never
// acts on it.
type Verdict int

const (
	Pass Verdict = iota
	Warn
	Fail
)

func (v Verdict) String() string {
	switch v {
	case Pass:
		return "PASS"
	case Warn:
		return "WARN"
	}
	return "FAIL"
}

// Verdict reports Fail only for what will certainly stop the engine from
// starting: a missing engine file or a loader failure.
func (f Finding) Verdict() Verdict {
	switch f.Probe {
	case ProbeStart:
		return Pass
	case ProbeEngineFile, ProbeICUData, ProbeAssets:
		if !f.Result.OK() {
			return Fail
		}
	case ProbeLoadLibrary:
		switch f.Result.Status {
		case Failed:
			return Fail
		case Absent:
			return Warn
		}
	default:
		if !f.Result.OK() {
			return Warn
		}
	}
	return Pass
}

// ExitCode is 1 when any finding failed, 0 otherwise.
func ExitCode(findings []Finding) int {
	for _, f := range findings {
		if f.Verdict() == Fail {
			return 1
		}
	}
	return 0
}
