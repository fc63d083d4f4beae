//go:build !console

package platform

const buildTarget = Desktop
