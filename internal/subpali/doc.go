// Package subpali counts palindromic substrings of a test input.
//
// For every position i of a string s it reports:
//   - Odd: the number of odd-length palindromes centred at i, i.e. the
//     largest k such that s[i-k+1 : i+k] is a palindrome (always >= 1);
//   - Even: the number of even-length palindromes whose right centre is i,
//     i.e. the largest k such that s[i-k : i+k] is a palindrome.
//
// Trivial expands around every centre in O(n^2); Manacher reuses mirrored
// results inside the rightmost known palindrome and runs in O(n). Both
// return identical results.
package subpali
