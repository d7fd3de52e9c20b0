// Package sensitivity answers the season's what-if question: under a total
// goal swing split between offense and defense, which losses become wins?
//
// A loss flips when its goals for, raised by the offensive share, strictly
// exceed its goals against lowered by the defensive share (floored at
// zero). Wins and ties never flip. For each magnitude the engine reports
// the all-offense count, the all-defense count, and the best split of the
// total swing across both.
package sensitivity
