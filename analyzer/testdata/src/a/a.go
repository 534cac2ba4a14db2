package a

type checker interface {
	Empty() bool
}

func conditions(a, b int, ok bool, items []int, obj checker) bool {
	if !(a >= 8 && b >= 5) { // want "avoid condition inversion"
		return true
	}
	if !ok {
		return false
	}
	if !obj.Empty() {
		return false
	}
	for !(a > b || ok) { // want "avoid condition inversion"
		a++
	}
	for i := 0; !(i >= b); i++ { // want "avoid condition inversion"
	}
	for {
		break
	}
	if !(ok && b > 0) { // want "avoid condition inversion"
		return true
	}
	if a < 8 || b < 5 {
		return false
	}
	return !(len(items) == 0) // want "avoid condition inversion"
}

func bare() {
	return
}
