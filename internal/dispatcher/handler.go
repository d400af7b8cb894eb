package dispatcher

// ArgType names the shape of the single argument a command accepts.
type ArgType int

const (
	ArgNone ArgType = iota
	ArgBool
	ArgInt
	ArgFloat
	ArgString
)

func (t ArgType) String() string {
	switch t {
	case ArgNone:
		return "none"
	case ArgBool:
		return "bool"
	case ArgInt:
		return "int"
	case ArgFloat:
		return "float"
	case ArgString:
		return "string"
	default:
		return "unknown"
	}
}

// Handler is implemented only by BoolHandler, IntHandler, FloatHandler,
// StringHandler and NoneHandler, so the argument conversion always agrees
// with the function that receives it.
type Handler interface {
	ArgType() ArgType
	sealed()
}

type (
	BoolHandler   func(bool)
	IntHandler    func(int)
	FloatHandler  func(float64)
	StringHandler func(string)
	NoneHandler   func()
)

func (BoolHandler) ArgType() ArgType   { return ArgBool }
func (IntHandler) ArgType() ArgType    { return ArgInt }
func (FloatHandler) ArgType() ArgType  { return ArgFloat }
func (StringHandler) ArgType() ArgType { return ArgString }
func (NoneHandler) ArgType() ArgType   { return ArgNone }

func (BoolHandler) sealed()   {}
func (IntHandler) sealed()    {}
func (FloatHandler) sealed()  {}
func (StringHandler) sealed() {}
func (NoneHandler) sealed()   {}

// Descriptor binds a command name to its handler.
type Descriptor struct {
	Name    string
	Handler Handler
}

// Table is scanned in order; the first descriptor whose name prefixes a line wins.
type Table []Descriptor

// Names returns the command names in table order.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for _, d := range t {
		names = append(names, d.Name)
	}
	return names
}
