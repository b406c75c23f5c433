package domain

// Favourites is a set of contact names. Names are listed in the order they
// were added.
type Favourites struct {
	order []string
	set   map[string]struct{}
}

func NewFavourites() *Favourites {
	return &Favourites{set: map[string]struct{}{}}
}

// Add inserts name and reports whether it was not already present.
func (f *Favourites) Add(name string) bool {
	if _, ok := f.set[name]; ok {
		return false
	}

	f.set[name] = struct{}{}
	f.order = append(f.order, name)
	return true
}

func (f *Favourites) Contains(name string) bool {
	_, ok := f.set[name]
	return ok
}

func (f *Favourites) Len() int {
	return len(f.order)
}

func (f *Favourites) Names() []string {
	return append([]string(nil), f.order...)
}
