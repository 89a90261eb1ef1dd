// Package bowling scores a game of ten-pin bowling, one throw at a time.
//
// http://en.wikipedia.org/wiki/Ten-pin_bowling#Scoring
//
// Feed every throw to Game.Roll in the order it was bowled and ask for
// Game.Score once the tenth frame (bonus throws included) is done.
package bowling
