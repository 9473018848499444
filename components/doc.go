// Package components defines the standard library of component types
// exchanged over the wire: mesh setup requests, physical quantities, light
// emissions, voxel object setup, and spatial reference frames.
//
// Each component is a plain Go struct paired with a Schema declaring its
// wire layout under the component's fully-qualified engine name. Registry
// returns a shared registry with every pair bound, ready to back an encoder
// on the producing side or a dispatcher on the consuming side.
package components
