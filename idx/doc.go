// Package idx reads the IDX binary format used by the MNIST dataset
// distribution.
//
// Readers are gzip-transparent: the compressed files as published can be fed
// in directly. Image bytes are flattened to one vector per image and scaled
// to [0, 1].
package idx
