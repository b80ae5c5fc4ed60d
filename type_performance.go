package patrimoine

// Performance holds the starting value, the ending value, and the computed
// return for a reporting period. Defined reports whether Return could be
// computed at all: an undefined return renders as "N/A", never as zero.
type Performance struct {
	Start, End Money
	Return     Percent
	Defined    bool
}

// NewPerformance builds a Performance without a computed return.
func NewPerformance(start, end Money) Performance {
	return Performance{Start: start, End: end}
}

// NewPerformanceWithReturn builds a Performance carrying a defined return.
func NewPerformanceWithReturn(start, end Money, ret Percent) Performance {
	return Performance{Start: start, End: end, Return: ret, Defined: true}
}

// Change returns the absolute value change over the period.
func (p Performance) Change() Money { return p.End.Sub(p.Start) }

// ReturnString renders the return, or "N/A" when it is undefined.
func (p Performance) ReturnString() string {
	if !p.Defined {
		return "N/A"
	}
	return p.Return.SignedString()
}
