package object

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// builtinPasswordHash implements password_hash(password): bcrypt hash of a string password.
func builtinPasswordHash(args ...Object) Object {
	if len(args) != 1 {
		return newError("wrong number of arguments. got=%d, want=1", len(args))
	}
	password, ok := args[0].(*String)
	if !ok {
		return newError("argument to `password_hash` must be STRING, got %s", args[0].Type())
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password.Value), bcrypt.DefaultCost)
	if err != nil {
		return newError("password_hash: %s", err)
	}
	return &String{Value: string(hashed)}
}

// builtinPasswordVerify implements password_verify(hash, password): bcrypt comparison.
func builtinPasswordVerify(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	hash, ok := args[0].(*String)
	if !ok {
		return newError("first argument to `password_verify` must be STRING, got %s", args[0].Type())
	}
	password, ok := args[1].(*String)
	if !ok {
		return newError("second argument to `password_verify` must be STRING, got %s", args[1].Type())
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash.Value), []byte(password.Value))
	return &Boolean{Value: err == nil}
}

// builtinJWTSign implements jwt_sign(claims, secret, ttl).
// Claims must be a hash with string keys; ttl is a duration string such as "24h".
func builtinJWTSign(args ...Object) Object {
	if len(args) != 3 {
		return newError("wrong number of arguments. got=%d, want=3", len(args))
	}
	claimsHash, ok := args[0].(*Hash)
	if !ok {
		return newError("first argument to `jwt_sign` must be HASH, got %s", args[0].Type())
	}
	secret, ok := args[1].(*String)
	if !ok {
		return newError("second argument to `jwt_sign` must be STRING, got %s", args[1].Type())
	}
	ttl, ok := args[2].(*String)
	if !ok {
		return newError("third argument to `jwt_sign` must be STRING, got %s", args[2].Type())
	}

	duration, err := time.ParseDuration(ttl.Value)
	if err != nil {
		return newError("jwt_sign: invalid duration %q", ttl.Value)
	}

	claims := jwt.MapClaims{}
	for _, pair := range claimsHash.Pairs {
		key, ok := pair.Key.(*String)
		if !ok {
			return newError("jwt_sign: claim keys must be STRING, got %s", pair.Key.Type())
		}
		claims[key.Value] = claimValue(pair.Value)
	}
	claims["exp"] = time.Now().Add(duration).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret.Value))
	if err != nil {
		return newError("jwt_sign: %s", err)
	}
	return &String{Value: signed}
}

// builtinJWTVerify implements jwt_verify(token, secret), returning the verified
// claims as a hash or an error value when the token does not check out.
func builtinJWTVerify(args ...Object) Object {
	if len(args) != 2 {
		return newError("wrong number of arguments. got=%d, want=2", len(args))
	}
	tokenString, ok := args[0].(*String)
	if !ok {
		return newError("first argument to `jwt_verify` must be STRING, got %s", args[0].Type())
	}
	secret, ok := args[1].(*String)
	if !ok {
		return newError("second argument to `jwt_verify` must be STRING, got %s", args[1].Type())
	}

	token, err := jwt.Parse(tokenString.Value, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret.Value), nil
	})
	if err != nil {
		return newError("jwt_verify: %s", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return newError("jwt_verify: invalid token")
	}

	pairs := make(map[HashKey]HashPair, len(claims))
	for name, value := range claims {
		key := &String{Value: name}
		pairs[key.HashKey()] = HashPair{Key: key, Value: claimObject(value)}
	}
	return &Hash{Pairs: pairs}
}

// claimValue converts a Gibbon value to a JWT claim value.
func claimValue(obj Object) any {
	switch obj := obj.(type) {
	case *Integer:
		return obj.Value
	case *Boolean:
		return obj.Value
	case *String:
		return obj.Value
	default:
		return obj.Inspect()
	}
}

// claimObject converts a decoded JWT claim value back to a Gibbon value.
// JSON numbers arrive as float64 and become integers; any fractional part is truncated.
func claimObject(value any) Object {
	switch value := value.(type) {
	case string:
		return &String{Value: value}
	case bool:
		return &Boolean{Value: value}
	case float64:
		return &Integer{Value: int64(value)}
	default:
		return &String{Value: "unsupported claim"}
	}
}
