package game

import "fmt"

// Move packs origin (bits 0-5), destination (bits 6-11) and promotion kind (bits 12-14).
type Move uint16

// NoMove is returned when a side has no legal move
const NoMove Move = 0

func NewMove(from, to Square, promotion Kind) Move {
	return Move(uint16(from) | uint16(to)<<6 | uint16(promotion)<<12)
}

func (m Move) From() Square {
	return Square(m & 0x3F)
}

func (m Move) To() Square {
	return Square(m >> 6 & 0x3F)
}

func (m Move) Promotion() Kind {
	return Kind(m >> 12 & 0x7)
}

func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	text := m.From().String() + m.To().String()
	switch m.Promotion() {
	case Rook:
		text += "r"
	case Bishop:
		text += "b"
	}
	return text
}

// ParseMove reads moves such as "e1f1" or "f6e6r".
func ParseMove(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return NoMove, fmt.Errorf("invalid move %q", text)
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return NoMove, fmt.Errorf("failed to parse origin: %w", err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return NoMove, fmt.Errorf("failed to parse destination: %w", err)
	}
	promotion := Empty
	if len(text) == 5 {
		switch text[4] {
		case 'r':
			promotion = Rook
		case 'b':
			promotion = Bishop
		default:
			return NoMove, fmt.Errorf("invalid promotion %q", text[4:])
		}
	}
	return NewMove(from, to, promotion), nil
}
