//go:build console

package platform

const buildTarget = ConsoleDocked
