package domain

import "fmt"

// TalkTime is one ledger entry: the cumulative call seconds for a name.
type TalkTime struct {
	Name    string
	Seconds int64
}

// TalkTimeLedger accumulates call seconds per contact name. Entries keep the
// order in which names were first seen; that order is what gets persisted and
// what breaks ties in Top.
type TalkTimeLedger struct {
	order   []string
	seconds map[string]int64
}

func NewTalkTimeLedger() *TalkTimeLedger {
	return &TalkTimeLedger{seconds: map[string]int64{}}
}

// Add increments the entry for name, creating it at zero first.
func (l *TalkTimeLedger) Add(name string, seconds int64) error {
	if seconds < 0 {
		return fmt.Errorf("talk time for %q cannot decrease by %d seconds", name, -seconds)
	}

	if _, ok := l.seconds[name]; !ok {
		l.order = append(l.order, name)
	}
	l.seconds[name] += seconds

	return nil
}

// Set overwrites the entry for name. It is used when restoring a persisted
// ledger, where a repeated name replaces the earlier value.
func (l *TalkTimeLedger) Set(name string, seconds int64) error {
	if seconds < 0 {
		return fmt.Errorf("talk time for %q cannot be negative: %d", name, seconds)
	}

	if _, ok := l.seconds[name]; !ok {
		l.order = append(l.order, name)
	}
	l.seconds[name] = seconds

	return nil
}

func (l *TalkTimeLedger) Seconds(name string) int64 {
	return l.seconds[name]
}

func (l *TalkTimeLedger) Len() int {
	return len(l.order)
}

func (l *TalkTimeLedger) Entries() []TalkTime {
	entries := make([]TalkTime, 0, len(l.order))
	for _, name := range l.order {
		entries = append(entries, TalkTime{Name: name, Seconds: l.seconds[name]})
	}

	return entries
}

// Top returns the entry with the strictly greatest total. Later entries only
// replace the current leader when they are strictly greater, so the first
// name to reach the maximum wins ties.
func (l *TalkTimeLedger) Top() (TalkTime, bool) {
	if len(l.order) == 0 {
		return TalkTime{}, false
	}

	top := TalkTime{Name: l.order[0], Seconds: l.seconds[l.order[0]]}
	for _, name := range l.order[1:] {
		if l.seconds[name] > top.Seconds {
			top = TalkTime{Name: name, Seconds: l.seconds[name]}
		}
	}

	return top, true
}
