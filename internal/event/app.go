package event

// Tick is the periodic pulse emitted by the tick loop.
type Tick struct{}

// Update asks the application to update its state.
type Update struct{}

// Render asks the application to render a frame.
type Render struct{}

func (Tick) Category() Category   { return CategoryApp }
func (Update) Category() Category { return CategoryApp }
func (Render) Category() Category { return CategoryApp }

func (Tick) String() string   { return "App(Tick)" }
func (Update) String() string { return "App(Update)" }
func (Render) String() string { return "App(Render)" }

func (Tick) event()   {}
func (Update) event() {}
func (Render) event() {}
