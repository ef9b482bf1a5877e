// Package ptr provides typed pointer primitives: taking the address of a
// value, element-scaled pointer arithmetic, a typed null sentinel and bulk
// copies of typed element ranges.
//
// Nothing here validates its arguments. Addresses carry no ownership or
// lifetime information, arithmetic never checks that the result lies inside
// an allocation, and the copy functions trust the caller's count and overlap
// claims. Misuse reads garbage or corrupts memory without a diagnostic.
// Layers that want checked behavior wrap these primitives, see pkg/checked.
package ptr
