package team

// Team is a club of the tracked season with its stable internal id.
type Team struct {
	ID   int
	Name string
}
