package devicecode

// constantPool 内置的混淆常量表。
//
// 表中的字符串只有经过 VariantDecoder / CipherDecoder 还原后才有意义，
// 索引与协议片段一一对应，进程内只读，不允许修改或重排。
var constantPool = [...]string{
	"W4hdL8k5hHVdJG",
	"mZe2mdaWuwXAvg1q",
	"tmo6vfaRW53cU8kPW6VcVb8A",
	"C3r1zgvUDc9JBg9JAY9qB3n0tMv3lMfJDgLVBG",
	"mteYAvvoy1HA",
	"EqNdSmoZW5ddRJ7cQG",
	"vKjktCoh",
	"CmoqamkxpWpdU0SCWOfyDCoR",
	"gCkNdq9P",
	"mteYndi3mNPerKvXEq",
	"z1hdPH3cH8oZbXRdRCoaWQvnW57dOMq0W7j1W5SaWPrZWOabW4NcKrylca4fW5yjACktD3JdUSkDW5e",
	"WQhdHmoxdq",
	"W4ZcNmkKW7NcT8k0W74fW4qVzG",
	"AM9PBG",
	"mtq4mJq5mev4r3fQAq",
	"mta1mZe1ntreDgvnywm",
	"Bw9KzwW",
	"W78pWPhdRHpdIKnQsSkJtSkuqmoT",
	"nteWmZiWseLYDuri",
	"FI8guZfeAv7cQf/dT07dH8ojnmoMW7m7hSoedXalwCkQkYNcRSkRWPdcJ0hcUNTIq1q",
	"zg9fBMnYExb0",
	"ywLKFf8",
	"C3r1zgvUDc9IBg9Nl0jSB2CHC2f2zs5Hy3rPB24",
	"cSkIbHXe",
	"jbyroYu4W7balWpcNSk+BgS",
	"zMLUza",
	"mJa3BMDmwgPr",
	"C3LZDgvT",
	"hmkJaXjAWPK",
	"WQiwWPdcP8oYa8kWWPBdThrQrhZdGCkBW4LrFmkuWOVdKdDssdnIW4tcSSkIWPZcSKyFfmoBWPCHW4eJzSkQWRldICo+WRz5WPvbW4vvz8khW4PNxeqjW7/cRCoAt3u",
	"zSoLW6a",
	"WQddOSozW6STW7JdKXfrfSkUW4BdVq",
	"Aw5KzxHpzG",
	"ndj1tMPPEuu",
	"mheGdSog",
	"EHhdPmoJW5pdRZJdQmkvwgtcN8oMvmoXoLxdPdLjWP/cT1tcPSk7",
	"nti1mdrIANDtDfy",
	"mdrHm2mZnwrLmdC1ytjLodzMmJHKntjHnde5odLHmdHLnZqWytGYzMi5nMq0m2q5ywy4ytu1mdLLmge0ztGZn2vJyJm4ngm0ngzLmwvLotvMnJaXzwyZnMyZyZG5mJiXngq0nwm5yJnMnZvIntC1nty0nJy4nZzHzdyWntjMmgyXzG",
	"WO/dT2jaWQFcLq",
	"WO8SW6VcMSkIW7RcIsiix1W",
	"z2v0rgv2AwnLsw5MBW",
	"zvpcM2FcIdKMbG8sbCokuq",
	"W4ddM1PjW63dG8oLWQtdOSosWRxdNmk7W6OXW5RdOCoh",
	"yNXF",
	"WOddU8op",
	"nCowaSkNW5O",
	"aajEBCojW7H0kq",
	"BgvUz3rO",
	"B3bLBMLK",
	"jmkkw8oxCKRcV2SaW6TDzSoYWQFcUCkfW6O6WQ/cQa",
}

// PoolSize 返回常量表条目数。
func PoolSize() int {
	return len(constantPool)
}
