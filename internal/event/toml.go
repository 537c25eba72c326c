package event

import "errors"

// UnmarshalTOML implements toml.Unmarshaler.
func (b *Bind) UnmarshalTOML(value any) error {
	str, ok := value.(string)
	if !ok {
		return errors.New("bind value was not a string")
	}
	bind, err := ParseBind(str)
	if err != nil {
		return err
	}
	*b = bind
	return nil
}
