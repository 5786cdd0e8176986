package summarize

import (
	"fmt"
	"strings"
)

// formatModelError turns a chat-model failure into the user-facing section
// text. The category is decided by substring matching on the error string.
// Whatever comes out is data: it is shown in place of the section, never
// re-raised.
func formatModelError(err error, sectionName string) string {
	errStr := err.Error()

	switch {
	case strings.Contains(errStr, "insufficient_quota") || strings.Contains(errStr, "429"):
		return fmt.Sprintf(`❌ %s 생성 실패: OpenAI API 할당량 초과

현재 OpenAI API 계정의 크레딧이 부족하거나 할당량을 초과했습니다.

해결 방법:
1. OpenAI 대시보드에서 계정 상태 확인: https://platform.openai.com/account/usage
2. 결제 정보를 추가하거나 크레딧을 충전하세요
3. 또는 다른 OpenAI API 키를 사용하세요

자세한 정보: https://platform.openai.com/docs/guides/error-codes/api-errors`, sectionName)

	case strings.Contains(errStr, "invalid_api_key") || strings.Contains(errStr, "401"):
		return fmt.Sprintf(`❌ %s 생성 실패: OpenAI API 키 오류

API 키가 유효하지 않거나 만료되었습니다.

해결 방법:
1. 환경변수 OPENAI_API_KEY가 올바른지 확인하세요
2. https://platform.openai.com/api-keys 에서 새 API 키를 발급받으세요`, sectionName)

	default:
		return fmt.Sprintf(`❌ %s 생성 중 오류 발생

오류 내용: %s

문제가 지속되면:
- 네트워크 연결을 확인하세요
- OpenAI 서비스 상태를 확인하세요: https://status.openai.com/
- API 키와 계정 상태를 확인하세요`, sectionName, errStr)
	}
}
