package event

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Key) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	key, err := ParseKey(str)
	if err != nil {
		return err
	}
	*k = key
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (m *Modifiers) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}
	mods, err := ParseModifiers(str)
	if err != nil {
		return err
	}
	*m = mods
	return nil
}
