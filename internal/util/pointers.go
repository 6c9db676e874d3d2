package util

func BoolPointer(b bool) *bool {
	return &b
}

func IntPointer(i int) *int {
	return &i
}

func FloatPointer(f float64) *float64 {
	return &f
}

func StringPointer(s string) *string {
	return &s
}
