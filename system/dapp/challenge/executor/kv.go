// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

// 状态库key，mavl前缀与账户数据同一命名空间
func adminKey() []byte {
	return []byte("mavl-challenge-admin")
}

func oracleKey() []byte {
	return []byte("mavl-challenge-oracle")
}

func challengeKey(addr string) []byte {
	return []byte("mavl-challenge-c-" + addr)
}
