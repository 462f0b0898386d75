package dnsmsg

import "strconv"

//go:generate stringer -type=OpCode

type OpCode byte

const (
	// RFC 1035
	Query  OpCode = 0
	IQuery OpCode = 1
	Status OpCode = 2
)

func (o OpCode) String() string {
	switch o {
	case Query:
		return "QUERY"
	case IQuery:
		return "IQUERY"
	case Status:
		return "STATUS"
	default:
		return "OpCode" + strconv.Itoa(int(o))
	}
}
