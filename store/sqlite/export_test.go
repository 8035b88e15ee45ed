// SPDX-License-Identifier: MIT
package sqlite

import "context"

// Pragma reads one connection setting, for tests.
func (s *Store) Pragma(ctx context.Context, name string) (string, error) {
	var v string
	err := s.sqlDB.QueryRowContext(ctx, "PRAGMA "+name).Scan(&v)

	return v, err
}
