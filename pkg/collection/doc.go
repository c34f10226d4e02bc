// Package collection holds small helpers for fixed-size arrays and slices.
package collection
