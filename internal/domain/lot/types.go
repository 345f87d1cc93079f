package lot

type SpotStatus string

const (
	SpotAvailable SpotStatus = "A"
	SpotOccupied  SpotStatus = "O"
)

func (s SpotStatus) String() string {
	return string(s)
}

func (s SpotStatus) IsValid() bool {
	return s == SpotAvailable || s == SpotOccupied
}
