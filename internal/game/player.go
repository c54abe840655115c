package game

// FallbackSymbol replaces the second player's symbol when both players pick
// the same one.
const FallbackSymbol = "💅"

var symbols = []string{"💀", "👽", "💩", "🤖", "👹", "👻", "👾"}

// Symbols returns the selectable player symbols in menu order.
func Symbols() []string {
	s := make([]string, len(symbols))
	copy(s, symbols)
	return s
}

type Player struct {
	name   string
	symbol string
}

func NewPlayer(name, symbol string) Player {
	return Player{name: name, symbol: symbol}
}

func (p Player) Name() string {
	return p.name
}

func (p Player) Symbol() string {
	return p.symbol
}

func (p Player) String() string {
	return p.symbol + " " + p.name
}

// Pair applies the duplicate-symbol rule to two freshly chosen players.
func Pair(first, second Player) (Player, Player) {
	if first.symbol == second.symbol {
		second = NewPlayer(second.name, FallbackSymbol)
	}
	return first, second
}
