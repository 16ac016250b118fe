package msg

import "fmt"

func Sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

func Sprint(args ...interface{}) string {
	return fmt.Sprint(args...)
}
