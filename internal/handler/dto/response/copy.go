package response

import "github.com/jinzhu/copier"

// copyInto maps a read model onto its response shape by field name.
func copyInto[T any](src any) (*T, error) {
	var dst T
	if err := copier.Copy(&dst, src); err != nil {
		return nil, err
	}
	return &dst, nil
}

func copyAll[T any, S any](src []S) ([]*T, error) {
	out := make([]*T, 0, len(src))
	for _, s := range src {
		d, err := copyInto[T](s)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
