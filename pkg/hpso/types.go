package hpso

// Kind selects which input shape a program uses.
type Kind string

const (
	// KindImaging programs produce discrete image cubes at a fixed cadence.
	KindImaging Kind = "imaging"
	// KindStreaming programs (non-imaging pipeline) produce a continuous bit stream.
	KindStreaming Kind = "streaming"
)

// Catalog is the complete survey scenario.
type Catalog struct {
	Source    string     `yaml:"source" json:"source"`
	Programs  []Program  `yaml:"programs" json:"programs"`
	Cosmology Cosmology  `yaml:"cosmology" json:"cosmology"`
	Charts    []ChartDef `yaml:"charts" json:"charts"`
}

// Program is one high-priority science objective.
// Imaging programs use ImageSizeBytes, Fields and ImageCadenceHours;
// streaming programs use DataRateBitsPerSec. A nil DutyCycle means the
// program has a storage total but no timeline projection.
type Program struct {
	Name               string   `yaml:"name" json:"name"`
	Kind               Kind     `yaml:"kind" json:"kind"`
	ImageSizeBytes     float64  `yaml:"image_size_bytes,omitempty" json:"image_size_bytes,omitempty"`
	ObservingHours     float64  `yaml:"observing_hours" json:"observing_hours"`
	Fields             int      `yaml:"fields,omitempty" json:"fields,omitempty"`
	ImageCadenceHours  float64  `yaml:"image_cadence_hours,omitempty" json:"image_cadence_hours,omitempty"`
	DataRateBitsPerSec float64  `yaml:"data_rate_bits_per_sec,omitempty" json:"data_rate_bits_per_sec,omitempty"`
	DutyCycle          *float64 `yaml:"duty_cycle,omitempty" json:"duty_cycle,omitempty"`
	Style              string   `yaml:"style,omitempty" json:"style,omitempty"`
}

// Projected reports whether the program carries a duty cycle.
func (p Program) Projected() bool {
	return p.DutyCycle != nil
}

// Cosmology describes the Cosmology:33 scalar, which reuses the image
// stack of another program scaled by a field multiplier.
type Cosmology struct {
	Name       string  `yaml:"name" json:"name"`
	Source     string  `yaml:"source" json:"source"`
	Multiplier float64 `yaml:"multiplier" json:"multiplier"`
}

// ChartDef names one exported timeline chart.
type ChartDef struct {
	File     string   `yaml:"file" json:"file"`
	Title    string   `yaml:"title" json:"title"`
	Programs []string `yaml:"programs,omitempty" json:"programs,omitempty"`
	Fleet    bool     `yaml:"fleet,omitempty" json:"fleet,omitempty"`
}

// ByName returns the program with the given name, or nil if not found.
func (c *Catalog) ByName(name string) *Program {
	for i := range c.Programs {
		if c.Programs[i].Name == name {
			return &c.Programs[i]
		}
	}
	return nil
}
