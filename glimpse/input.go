package glimpse

//go:generate go tool stringer -type=Key,Action -trimprefix=Key -output=input_string.go

type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
)

type Action int

const (
	Press Action = iota
	Repeat
	Release
)
