package pow

import (
	"math"

	"git.gammaspectra.live/P2Pool/spectrex/types"
	"git.gammaspectra.live/P2Pool/spectrex/utils"
)

const MatrixSize = 64

// MaxMatrixAttempts candidate matrices drawn before generation is considered broken.
// A random 64x64 matrix of nibbles is singular with negligible probability.
const MaxMatrixAttempts = 1 << 8

const rankEpsilon float64 = 1e-9

// Matrix 64x64 cells in 0..15, immutable once generated
type Matrix [MatrixSize][MatrixSize]uint16

// GenerateMatrix draws candidate matrices from a xoshiro256++ stream seeded with prePowHash until one has full rank
func GenerateMatrix(prePowHash types.Uint256) *Matrix {
	var mat Matrix
	generator := newxoShiRo256PlusPlus(prePowHash)

	for attempt := 1; attempt <= MaxMatrixAttempts; attempt++ {
		mat.fill(generator)
		if mat.ComputeRank() == MatrixSize {
			if attempt > 1 {
				utils.Debugf("Matrix", "pre-pow hash %s accepted after %d attempts", prePowHash, attempt)
			}
			return &mat
		}
	}

	utils.Panicf("Matrix", "no full rank matrix for pre-pow hash %s after %d attempts", prePowHash, MaxMatrixAttempts)
	return nil
}

func (mat *Matrix) fill(generator *xoShiRo256PlusPlus) {
	for i := range mat {
		for j := 0; j < MatrixSize; j += 16 {
			val := generator.Uint64()
			for shift := range 16 {
				mat[i][j+shift] = uint16((val >> (4 * shift)) & 0x0F)
			}
		}
	}
}

// ComputeRank rank by Gauss-Jordan elimination over float64.
// Each product is stored before subtracting so no fused multiply-add changes the rounding.
func (mat *Matrix) ComputeRank() int {
	var b [MatrixSize][MatrixSize]float64
	for i := range b {
		for j := range b[i] {
			b[i][j] = float64(mat[i][j])
		}
	}

	var rank int
	var rowSelected [MatrixSize]bool
	for i := range MatrixSize {
		var j int
		for j = 0; j < MatrixSize; j++ {
			if !rowSelected[j] && math.Abs(b[j][i]) > rankEpsilon {
				break
			}
		}
		if j == MatrixSize {
			continue
		}

		rank++
		rowSelected[j] = true
		for p := i + 1; p < MatrixSize; p++ {
			b[j][p] = float64(b[j][p] / b[j][i])
		}
		for k := range MatrixSize {
			if k != j && math.Abs(b[k][i]) > rankEpsilon {
				for p := i + 1; p < MatrixSize; p++ {
					product := float64(b[j][p] * b[k][i])
					b[k][p] = float64(b[k][p] - product)
				}
			}
		}
	}
	return rank
}

// HeavyHash multiplies the nibbles of in by the matrix, folds the reduced product back into in and
// finalizes it with HeavyHasher
func (mat *Matrix) HeavyHash(in types.Uint256) types.Uint256 {
	hashBytes := in.Bytes()

	var vector [MatrixSize]uint16
	for i := range types.HashSize {
		vector[2*i] = uint16(hashBytes[i] >> 4)
		vector[2*i+1] = uint16(hashBytes[i] & 0x0F)
	}

	// at most 64 * 15 * 15, the top 4 of 14 bits are kept
	var product [MatrixSize]uint16
	for i := range MatrixSize {
		var sum uint16
		for j := range MatrixSize {
			sum += mat[i][j] * vector[j]
		}
		product[i] = sum >> 10
	}

	var res [types.HashSize]byte
	for i := range res {
		res[i] = hashBytes[i] ^ (byte(product[2*i]<<4) | byte(product[2*i+1]))
	}

	return HeavyHash(types.Uint256FromBytes(res))
}
