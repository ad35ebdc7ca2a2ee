// Package operators provides ONNX operator implementations executed on a tensor.Backend.
//
// Softmax and LogSoftmax follow opset 13 semantics: the axis attribute
// (default -1) selects a single dimension rather than flattening the
// input into 2-D.
package operators
