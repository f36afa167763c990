package catalog

// Brand lookup entity
type Brand struct {
	ID   int64
	Name string
}

// Class lookup entity
type Class struct {
	ID   int64
	Name string
}
