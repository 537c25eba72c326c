package platform

// Keycode is a native key code (X11, evdev layout.)
type Keycode uint8

// Native button numbers.
const (
	ButtonLeft       uint8 = 1
	ButtonMiddle     uint8 = 2
	ButtonRight      uint8 = 3
	ButtonWheelUp    uint8 = 4
	ButtonWheelDown  uint8 = 5
	ButtonWheelLeft  uint8 = 6
	ButtonWheelRight uint8 = 7
	ButtonBack       uint8 = 8
	ButtonForward    uint8 = 9
	ButtonMax        uint8 = 24 // Highest button with a symbolic identifier
)

// Native modifier mask bits.
const (
	MaskShift   uint16 = 1 << 0
	MaskLock    uint16 = 1 << 1
	MaskControl uint16 = 1 << 2
	Mask1       uint16 = 1 << 3
	Mask2       uint16 = 1 << 4
	Mask3       uint16 = 1 << 5
	Mask4       uint16 = 1 << 6
	Mask5       uint16 = 1 << 7
)

// Keycodes
const (
	CodeEscape       Keycode = 9
	Code1            Keycode = 10
	Code2            Keycode = 11
	Code3            Keycode = 12
	Code4            Keycode = 13
	Code5            Keycode = 14
	Code6            Keycode = 15
	Code7            Keycode = 16
	Code8            Keycode = 17
	Code9            Keycode = 18
	Code0            Keycode = 19
	CodeMinus        Keycode = 20
	CodeEqual        Keycode = 21
	CodeBackspace    Keycode = 22
	CodeTab          Keycode = 23
	CodeQ            Keycode = 24
	CodeW            Keycode = 25
	CodeE            Keycode = 26
	CodeR            Keycode = 27
	CodeT            Keycode = 28
	CodeY            Keycode = 29
	CodeU            Keycode = 30
	CodeI            Keycode = 31
	CodeO            Keycode = 32
	CodeP            Keycode = 33
	CodeBracketLeft  Keycode = 34
	CodeBracketRight Keycode = 35
	CodeEnter        Keycode = 36
	CodeCtrlLeft     Keycode = 37
	CodeA            Keycode = 38
	CodeS            Keycode = 39
	CodeD            Keycode = 40
	CodeF            Keycode = 41
	CodeG            Keycode = 42
	CodeH            Keycode = 43
	CodeJ            Keycode = 44
	CodeK            Keycode = 45
	CodeL            Keycode = 46
	CodeSemicolon    Keycode = 47
	CodeApostrophe   Keycode = 48
	CodeBacktick     Keycode = 49
	CodeShiftLeft    Keycode = 50
	CodeBackslash    Keycode = 51
	CodeZ            Keycode = 52
	CodeX            Keycode = 53
	CodeC            Keycode = 54
	CodeV            Keycode = 55
	CodeB            Keycode = 56
	CodeN            Keycode = 57
	CodeM            Keycode = 58
	CodeComma        Keycode = 59
	CodePeriod       Keycode = 60
	CodeSlash        Keycode = 61
	CodeShiftRight   Keycode = 62
	CodeNumMultiply  Keycode = 63
	CodeAltLeft      Keycode = 64
	CodeSpace        Keycode = 65
	CodeCapsLock     Keycode = 66
	CodeF1           Keycode = 67
	CodeF2           Keycode = 68
	CodeF3           Keycode = 69
	CodeF4           Keycode = 70
	CodeF5           Keycode = 71
	CodeF6           Keycode = 72
	CodeF7           Keycode = 73
	CodeF8           Keycode = 74
	CodeF9           Keycode = 75
	CodeF10          Keycode = 76
	CodeNumLock      Keycode = 77
	CodeScrollLock   Keycode = 78
	CodeNum7         Keycode = 79
	CodeNum8         Keycode = 80
	CodeNum9         Keycode = 81
	CodeNumSubtract  Keycode = 82
	CodeNum4         Keycode = 83
	CodeNum5         Keycode = 84
	CodeNum6         Keycode = 85
	CodeNumAdd       Keycode = 86
	CodeNum1         Keycode = 87
	CodeNum2         Keycode = 88
	CodeNum3         Keycode = 89
	CodeNum0         Keycode = 90
	CodeNumDecimal   Keycode = 91
	CodeF11          Keycode = 95
	CodeF12          Keycode = 96
	CodeNumEnter     Keycode = 104
	CodeCtrlRight    Keycode = 105
	CodeNumDivide    Keycode = 106
	CodePrintScreen  Keycode = 107
	CodeAltRight     Keycode = 108
	CodeHome         Keycode = 110
	CodeUp           Keycode = 111
	CodePageUp       Keycode = 112
	CodeLeft         Keycode = 113
	CodeRight        Keycode = 114
	CodeEnd          Keycode = 115
	CodeDown         Keycode = 116
	CodePageDown     Keycode = 117
	CodeInsert       Keycode = 118
	CodeDelete       Keycode = 119
	CodePause        Keycode = 127
	CodeOSLeft       Keycode = 133
	CodeOSRight      Keycode = 134
	CodeMenu         Keycode = 135
)
