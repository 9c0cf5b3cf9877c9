package pow

import (
	"git.gammaspectra.live/P2Pool/spectrex/crypto"
	"git.gammaspectra.live/P2Pool/spectrex/types"
)

// powHasherInitialState cSHAKE256 state after absorbing the "ProofOfWorkHash" function customization block
var powHasherInitialState = [crypto.KeccakStateLanes]uint64{
	1242148031264380989, 3008272977830772284, 2188519011337848018, 1992179434288343456, 8876506674959887717,
	5399642050693751366, 1745875063082670864, 8605242046444978844, 17936695144567157056, 3343109343542796272,
	1123092876221303306, 4963925045340115282, 17037383077651887893, 16629644495023626889, 12833675776649114147,
	3784524041015224902, 1082795874807940378, 13952716920571277634, 13411128033953605860, 15060696040649351053,
	9928834659948351306, 5237849264682708699, 12825353012139217522, 6706187291358897596, 196324915476054915,
}

// heavyHasherInitialState cSHAKE256 state after absorbing the "HeavyHash" function customization block
var heavyHasherInitialState = [crypto.KeccakStateLanes]uint64{
	4239941492252378377, 8746723911537738262, 8796936657246353646, 1272090201925444760, 16654558671554924250,
	8270816933120786537, 13907396207649043898, 6782861118970774626, 9239690602118867528, 11582319943599406348,
	17596056728278508070, 15212962468105129023, 7812475424661425213, 3370482334374859748, 5690099369266491460,
	8596393687355028144, 570094237299545110, 9119540418498120711, 16901969272480492857, 13372017233735502424,
	14372891883993151831, 5171152063242093102, 10573107899694386186, 6096431547456407061, 1592359455985097269,
}

const (
	powTimestampLane = 4
	powNonceLane     = 9
)

// PowHasher sponge state holding PRE_POW_HASH || TIMESTAMP || 32 zero bytes, without the nonce.
// The padding bytes of the final block are already part of the initial state.
type PowHasher [crypto.KeccakStateLanes]uint64

func NewPowHasher(prePowHash types.Uint256, timestamp uint64) PowHasher {
	h := PowHasher(powHasherInitialState)
	for i, w := range prePowHash {
		h[i] ^= w
	}
	h[powTimestampLane] ^= timestamp
	return h
}

// FinalizeWithNonce absorbs nonce into a copy of the base state and squeezes 32 bytes.
// The receiver is left untouched and can be reused for any number of nonces.
func (h PowHasher) FinalizeWithNonce(nonce uint64) types.Uint256 {
	h[powNonceLane] ^= nonce
	crypto.KeccakF1600((*[crypto.KeccakStateLanes]uint64)(&h))
	return types.Uint256{h[0], h[1], h[2], h[3]}
}

// HeavyHasher final sponge of the matrix mix
type HeavyHasher [crypto.KeccakStateLanes]uint64

func NewHeavyHasher() HeavyHasher {
	return HeavyHasher(heavyHasherInitialState)
}

// Hash absorbs in and squeezes 32 bytes
func (h HeavyHasher) Hash(in types.Uint256) types.Uint256 {
	for i, w := range in {
		h[i] ^= w
	}
	crypto.KeccakF1600((*[crypto.KeccakStateLanes]uint64)(&h))
	return types.Uint256{h[0], h[1], h[2], h[3]}
}

// HeavyHash single call form of HeavyHasher.Hash
func HeavyHash(in types.Uint256) types.Uint256 {
	return NewHeavyHasher().Hash(in)
}
