package subpali

// Info holds the palindrome counts for one position.
type Info struct {
	Odd  int `json:"odd" yaml:"odd"`
	Even int `json:"even" yaml:"even"`
}

// Algorithm computes per-position palindrome counts.
type Algorithm func(s string) []Info

// Trivial expands independently around every centre.
func Trivial(s string) []Info {
	n := len(s)
	infos := make([]Info, n)

	for i := 0; i < n; i++ {
		k := 1
		for i-k >= 0 && i+k < n && s[i-k] == s[i+k] {
			k++
		}
		infos[i].Odd = k
	}

	for i := 0; i < n; i++ {
		k := 0
		for i-k-1 >= 0 && i+k < n && s[i-k-1] == s[i+k] {
			k++
		}
		infos[i].Even = k
	}

	return infos
}

// Manacher computes the same counts as Trivial in linear time.
//
// [l, r] is the rightmost palindrome found so far. A centre inside it
// starts from its mirror's count, capped at the distance to r, and only
// expands beyond r.
func Manacher(s string) []Info {
	n := len(s)
	infos := make([]Info, n)

	for i, l, r := 0, 0, -1; i < n; i++ {
		k := 1
		if i <= r {
			k = min(infos[l+r-i].Odd, r-i+1)
		}
		for i-k >= 0 && i+k < n && s[i-k] == s[i+k] {
			k++
		}
		infos[i].Odd = k
		if i+k-1 > r {
			l, r = i-k+1, i+k-1
		}
	}

	for i, l, r := 0, 0, -1; i < n; i++ {
		k := 0
		if i <= r {
			k = min(infos[l+r-i+1].Even, r-i+1)
		}
		for i-k-1 >= 0 && i+k < n && s[i-k-1] == s[i+k] {
			k++
		}
		infos[i].Even = k
		if i+k-1 > r {
			l, r = i-k, i+k-1
		}
	}

	return infos
}

// Total returns the number of palindromic substrings described by infos,
// counting each occurrence separately.
func Total(infos []Info) int {
	total := 0
	for _, info := range infos {
		total += info.Odd + info.Even
	}
	return total
}
