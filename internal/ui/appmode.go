package ui

// AppMode is derived from where document focus is: the search box or the grid.
type AppMode int

const (
	ModeGrid AppMode = iota
	ModeSearch
)

func (m AppMode) String() string {
	switch m {
	case ModeGrid:
		return "Grid"
	case ModeSearch:
		return "Search"
	default:
		return "Unknown"
	}
}
