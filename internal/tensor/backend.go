package tensor

// Backend defines the interface that compute backends must implement.
// Backends handle the actual computation for tensor operations and panic
// on invalid arguments; the checked entry points are the Tensor methods.
//
// Implementations:
//   - CPU: Pure Go (internal/backend/cpu)
type Backend interface {
	// Math operations (element-wise)
	Exp(x *RawTensor) *RawTensor // exponential
	Log(x *RawTensor) *RawTensor // natural logarithm

	// Activation functions
	Softmax(x *RawTensor, dim int) *RawTensor    // softmax along dimension
	LogSoftmax(x *RawTensor, dim int) *RawTensor // log-softmax along dimension

	// Reduction operations
	SumDim(x *RawTensor, dim int, keepDim bool) *RawTensor // sum along dimension
	MaxDim(x *RawTensor, dim int, keepDim bool) *RawTensor // max along dimension

	// Metadata
	Name() string
	Device() Device
}
