package domain

// RecentLog is the append-only history of contacted names, oldest first.
type RecentLog struct {
	names []string
}

func NewRecentLog(names ...string) *RecentLog {
	return &RecentLog{names: append([]string(nil), names...)}
}

func (r *RecentLog) Append(name string) {
	r.names = append(r.names, name)
}

func (r *RecentLog) Last() (string, bool) {
	if len(r.names) == 0 {
		return "", false
	}

	return r.names[len(r.names)-1], true
}

func (r *RecentLog) Len() int {
	return len(r.names)
}

func (r *RecentLog) Names() []string {
	return append([]string(nil), r.names...)
}
