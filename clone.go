package inputmask

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Form.
//
// Form.Raw and Form.Display write into a clone, so the value passed in is
// never modified. For simple value types Clone can return the receiver:
//
//	func (a Address) Clone() Address { return a }
type Cloner[T any] interface {
	Clone() T
}
