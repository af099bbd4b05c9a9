// Package hash encapsula o hashing de senhas com bcrypt.
package hash

import "golang.org/x/crypto/bcrypt"

// Hasher define o contrato de geração e verificação de hashes de senha,
// mantendo o algoritmo concreto fora do domínio.
type Hasher interface {
	// Hash gera um hash salgado a partir da senha em texto claro.
	Hash(password string) (string, error)

	// Check compara a senha em texto claro com o hash armazenado.
	Check(password, hash string) bool
}

// Bcrypt implementa Hasher sobre golang.org/x/crypto/bcrypt.
// O salt é gerado pelo próprio bcrypt e embutido no hash; a comparação
// usa a verificação do algoritmo, que é de tempo constante.
type Bcrypt struct {
	cost int
}

// NewBcrypt cria um Bcrypt com o custo default do pacote.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (b *Bcrypt) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
