// cmd/summitctl/seed.go
//
// Launch content fixtures for `summitctl seed`.
//
// The download items mirror the material handed to sponsors, speakers,
// and press at launch.  Ids are left empty on purpose: the store
// generates them, and the repositories strip client-supplied ids anyway.
package main

import (
	"github.com/primenumber-jp/datasummit-site/internal/content/download"
	"github.com/primenumber-jp/datasummit-site/internal/content/faq"
	"github.com/primenumber-jp/datasummit-site/internal/content/form"
)

var seedDownloads = []download.Item{
	{
		Category:    download.CategorySponsor,
		Title:       "スポンサーガイド",
		Description: "スポンサー出展に関する詳細情報と注意事項が記載されています。料金プラン、特典内容、申込方法などをご確認いただけます。",
		FileType:    "PDF",
		FileSize:    "2.4MB",
		DownloadURL: "https://drive.google.com/file/d/xxxx/view",
		LastUpdated: "2025-04-15",
	},
	{
		Category:    download.CategorySponsor,
		Title:       "ブース設営マニュアル",
		Description: "展示ブースの設営・撤去に関するガイドラインです。搬入出スケジュール、電源・ネットワーク情報、禁止事項などが記載されています。",
		FileType:    "PDF",
		FileSize:    "3.1MB",
		DownloadURL: "https://drive.google.com/file/d/yyyy/view",
		LastUpdated: "2025-05-10",
	},
	{
		Category:    download.CategoryBranding,
		Title:       "ロゴパッケージ",
		Description: "高解像度ロゴとブランドガイドラインが含まれています。プロモーション資料作成時にご利用ください。",
		FileType:    "ZIP",
		FileSize:    "15.2MB",
		DownloadURL: "https://drive.google.com/file/d/zzzz/view",
		LastUpdated: "2025-04-20",
	},
	{
		Category:    download.CategorySpeaker,
		Title:       "プレゼンテーションテンプレート",
		Description: "登壇者用のPowerPointテンプレートです。このテンプレートを使用して発表資料を作成してください。",
		FileType:    "PPTX",
		FileSize:    "1.8MB",
		DownloadURL: "https://drive.google.com/file/d/aaaa/view",
		LastUpdated: "2025-05-05",
	},
	{
		Category:    download.CategorySpeaker,
		Title:       "セッションガイドライン",
		Description: "講演時間、Q&A対応、資料提出期限など、登壇者が知っておくべき重要事項をまとめています。",
		FileType:    "PDF",
		FileSize:    "1.2MB",
		DownloadURL: "https://drive.google.com/file/d/bbbb/view",
		LastUpdated: "2025-05-12",
	},
	{
		Category:    download.CategoryGeneral,
		Title:       "会場フロアマップ",
		Description: "高輪ゲートウェイコンベンションセンター 4階の詳細なフロアマップです。ブース配置、セッション会場、休憩エリアなどをご確認いただけます。",
		FileType:    "PDF",
		FileSize:    "4.5MB",
		DownloadURL: "https://drive.google.com/file/d/cccc/view",
		LastUpdated: "2025-05-20",
	},
	{
		Category:    download.CategoryPress,
		Title:       "プレスキット",
		Description: "メディア関係者向けの資料パッケージです。イベント概要、出展企業リスト、注目セッション情報などが含まれています。",
		FileType:    "ZIP",
		FileSize:    "8.7MB",
		DownloadURL: "https://drive.google.com/file/d/dddd/view",
		LastUpdated: "2025-05-15",
	},
	{
		Category:    download.CategoryGeneral,
		Title:       "Wi-Fi接続ガイド",
		Description: "会場内のWi-Fi接続方法と注意事項です。セッション発表者、ブース出展者向けの専用ネットワーク情報も含まれています。",
		FileType:    "PDF",
		FileSize:    "0.8MB",
		DownloadURL: "https://drive.google.com/file/d/eeee/view",
		LastUpdated: "2025-05-22",
	},
}

var seedFaqs = []faq.Item{
	{
		Category: faq.CategoryVenue,
		Question: "会場へのアクセス方法を教えてください。",
		Answer:   "高輪ゲートウェイ駅から徒歩3分です。駅改札を出て右手のコンベンションセンター入口をご利用ください。",
		Priority: 1,
	},
	{
		Category: faq.CategoryRegistration,
		Question: "参加登録のキャンセルはできますか。",
		Answer:   "開催日の7日前まではマイページからキャンセルいただけます。それ以降はお問い合わせフォームよりご連絡ください。",
		Priority: 2,
	},
	{
		Category: faq.CategorySponsor,
		Question: "ブースの搬入はいつから可能ですか。",
		Answer:   "前日の14時から20時まで搬入いただけます。詳細はブース設営マニュアルをご確認ください。",
		Priority: 3,
	},
	{
		Category: faq.CategorySpeaker,
		Question: "発表資料の提出期限はいつですか。",
		Answer:   "開催日の10日前までにセッション管理ページからご提出ください。",
		Priority: 3,
	},
	{
		Category: faq.CategoryGeneral,
		Question: "会場内で飲食はできますか。",
		Answer:   "4階の休憩エリアでご飲食いただけます。セッション会場内への飲食物の持ち込みはご遠慮ください。",
		Priority: 5,
	},
}

var seedForms = []form.Item{
	{
		Category:    "sponsor",
		Title:       "スポンサー申込フォーム",
		Description: "スポンサー出展のお申し込みはこちらから。",
		FormURL:     "https://forms.gle/sponsor-apply",
		Deadline:    "2025-06-20",
		IsRequired:  true,
	},
	{
		Category:    "speaker",
		Title:       "セッション資料提出フォーム",
		Description: "登壇者の発表資料はこちらからご提出ください。",
		FormURL:     "https://forms.gle/speaker-materials",
		Deadline:    "2025-07-01",
		IsRequired:  true,
	},
	{
		Category:    "general",
		Title:       "お問い合わせフォーム",
		Description: "その他のご質問はこちらから。",
		FormURL:     "https://forms.gle/summit-contact",
		IsRequired:  false,
	},
}
