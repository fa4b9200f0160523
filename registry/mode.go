package registry

//go:generate go tool stringer -type=Mode -linecomment -output=mode_string.go

// Mode selects which conversion of an entry is applied.
type Mode uint8

const (
	ModeRef   Mode = iota // ref
	ModeMut               // mut
	ModeOwned             // owned

	// ModeTotal is the number of conversion modes an entry carries.
	ModeTotal = int(iota)
)
