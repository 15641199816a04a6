//go:build !race

package userservice

func passwordHashCost() int {
	// Hash cost trades login latency for brute force resistance. Changing
	// it only affects newly stored hashes.
	return 14
}
