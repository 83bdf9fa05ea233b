// Package service 包含了应用的业务逻辑层。
package service

import "errors"

// 业务错误哨兵。错误文案会原样进入响应的 error 字段，是前端依赖的契约，
// 措辞保持与历史版本一致。
var (
	// ErrEmptyInput 表示题目输入为空。
	ErrEmptyInput = errors.New("No problem input provided")
	// ErrInvalidURL 表示输入疑似题目链接但无法提取 slug。
	ErrInvalidURL = errors.New("Invalid LeetCode URL format")
	// ErrInvalidInput 表示输入既不是数字 ID 也不是题目链接。
	ErrInvalidInput = errors.New("Invalid input: Must be a LeetCode ID (e.g., 242) or full URL")
	// ErrProblemServer 是题目接口返回异常数据时的通用文案，不向前端透出解析细节。
	ErrProblemServer = errors.New("Server error processing problem")
)
