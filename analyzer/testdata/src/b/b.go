package b

type checker interface {
	Empty() bool
}

func conditions(a, b int, ok bool, items []int, obj checker) bool {
	if !(a >= 8 && b >= 5) { // want "avoid condition inversion"
		return true
	}
	if !obj.Empty() {
		return false
	}
	for !(a > b || ok) {
		a++
	}
	for i := 0; !(i >= b); i++ { // want "avoid condition inversion"
	}
	if !(ok && b > 0) {
		return true
	}
	return !(len(items) == 0) // want "avoid condition inversion"
}
