package parsers

import "fmt"

func GetParser(source string) (Parser, error) {
	switch source {
	case "operations":
		return NewOperationsParser(), nil
	default:
		return nil, fmt.Errorf("no parser available for source: %s", source)
	}
}
